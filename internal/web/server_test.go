package web

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cracktacoshop/site/internal/careers"
	"github.com/cracktacoshop/site/internal/config"
	"github.com/cracktacoshop/site/internal/content"
	"github.com/cracktacoshop/site/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// stubRelay records sends without touching a network.
type stubRelay struct {
	configured bool
	fail       error
	sent       []careers.Message
}

func (r *stubRelay) Configured() bool { return r.configured }

func (r *stubRelay) Send(_ context.Context, msg careers.Message) error {
	if r.fail != nil {
		return r.fail
	}
	r.sent = append(r.sent, msg)
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080
	cfg.Server.RequestTimeout = 0
	cfg.Careers.To = "hiring@example.com"
	cfg.Careers.MaxResumeBytes = careers.MaxResumeBytes
	cfg.Rate.Enabled = false
	cfg.Security.EnableCSP = true
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config, relay careers.Relay) *Server {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	if relay == nil {
		relay = &stubRelay{configured: true}
	}
	svc := careers.NewService(relay, cfg.Careers.MaxResumeBytes)
	return NewServer(cfg, svc, nil)
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Status    string `json:"status"`
		Locations int    `json:"locations"`
	}
	decodeJSON(t, rec, &body)
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
	if body.Locations != 4 {
		t.Errorf("locations = %d, want 4", body.Locations)
	}
}

func TestListLocations(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/locations", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Locations []struct {
			Slug string `json:"slug"`
		} `json:"locations"`
	}
	decodeJSON(t, rec, &body)
	if len(body.Locations) != 4 {
		t.Fatalf("got %d locations, want 4", len(body.Locations))
	}
	if body.Locations[0].Slug != "mission-valley" {
		t.Errorf("first slug = %q, want mission-valley", body.Locations[0].Slug)
	}
}

func TestGetLocation(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/locations/encinitas", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Location struct {
			Slug string `json:"slug"`
		} `json:"location"`
		MapsURL string `json:"mapsUrl"`
	}
	decodeJSON(t, rec, &body)
	if body.Location.Slug != "encinitas" {
		t.Errorf("slug = %q, want encinitas", body.Location.Slug)
	}
	if body.MapsURL == "" {
		t.Error("mapsUrl is empty")
	}

	rec = doRequest(s, httptest.NewRequest(http.MethodGet, "/api/locations/nowhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown slug status = %d, want 404", rec.Code)
	}
}

func TestGetMenuFallsBack(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/menu/nowhere", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Sections []json.RawMessage `json:"sections"`
	}
	decodeJSON(t, rec, &body)
	if len(body.Sections) == 0 {
		t.Error("fallback menu has no sections")
	}
}

func TestNearestWithCoordinates(t *testing.T) {
	s := newTestServer(t, nil, nil)

	tests := []struct {
		name     string
		query    string
		wantOK   bool
		wantSlug string
		reason   string
	}{
		{"near encinitas", "?lat=33.06&lon=-117.29", true, "encinitas", ""},
		{"near coronado", "?lat=32.69&lon=-117.18", true, "coronado", ""},
		{"garbage params", "?lat=abc&lon=1", false, "", "unavailable"},
		{"no params no provider", "", false, "", "unsupported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/locations/nearest"+tt.query, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var body nearestResponse
			decodeJSON(t, rec, &body)
			if body.OK != tt.wantOK {
				t.Fatalf("ok = %v, want %v (body %+v)", body.OK, tt.wantOK, body)
			}
			if body.Slug != tt.wantSlug {
				t.Errorf("slug = %q, want %q", body.Slug, tt.wantSlug)
			}
			if body.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", body.Reason, tt.reason)
			}
			if !tt.wantOK && body.Message == "" {
				t.Error("failure response has no guidance message")
			}
		})
	}
}

func TestShoppingLocationRoundTrip(t *testing.T) {
	s := newTestServer(t, nil, nil)

	// First contact: nothing selected, default store resolved.
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/shopping-location", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body shoppingLocationResponse
	decodeJSON(t, rec, &body)
	if body.Selected {
		t.Error("fresh session reports a selection")
	}
	if body.Location.Slug != "mission-valley" {
		t.Errorf("default location = %q, want mission-valley", body.Location.Slug)
	}

	cookie := sessionCookie(t, rec)

	// Record a selection.
	req := httptest.NewRequest(http.MethodPut, "/api/shopping-location",
		strings.NewReader(`{"slug":"coronado"}`))
	req.AddCookie(cookie)
	rec = doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", rec.Code)
	}

	// Read it back on the same session.
	req = httptest.NewRequest(http.MethodGet, "/api/shopping-location", nil)
	req.AddCookie(cookie)
	rec = doRequest(s, req)
	decodeJSON(t, rec, &body)
	if !body.Selected || body.Slug != "coronado" {
		t.Fatalf("selection = %+v, want coronado selected", body)
	}
	if body.Location.Slug != "coronado" {
		t.Errorf("resolved location = %q, want coronado", body.Location.Slug)
	}

	// A different session is unaffected.
	rec = doRequest(s, httptest.NewRequest(http.MethodGet, "/api/shopping-location", nil))
	decodeJSON(t, rec, &body)
	if body.Selected {
		t.Error("new session sees another session's selection")
	}
}

func TestShoppingLocationPermissiveWrite(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/shopping-location", nil))
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodPut, "/api/shopping-location",
		strings.NewReader(`{"slug":"closed-store"}`))
	req.AddCookie(cookie)
	rec = doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", rec.Code)
	}

	var body shoppingLocationResponse
	decodeJSON(t, rec, &body)
	if body.Slug != "closed-store" {
		t.Errorf("stored slug = %q, want closed-store", body.Slug)
	}
	// Unknown slug resolves to the default on read.
	if body.Location.Slug != "mission-valley" {
		t.Errorf("resolved location = %q, want mission-valley", body.Location.Slug)
	}
}

func TestShoppingLocationRejectsEmpty(t *testing.T) {
	s := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/shopping-location",
		strings.NewReader(`{"slug":""}`))
	rec := doRequest(s, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLocationPageRecordsSelection(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/locations/seaport-village", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("page status = %d, want 200", rec.Code)
	}
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/api/shopping-location", nil)
	req.AddCookie(cookie)
	rec = doRequest(s, req)

	var body shoppingLocationResponse
	decodeJSON(t, rec, &body)
	if body.Slug != "seaport-village" {
		t.Fatalf("slug after page visit = %q, want seaport-village", body.Slug)
	}
}

func TestUnknownLocationPage(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/locations/nowhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPagesRender(t *testing.T) {
	s := newTestServer(t, nil, nil)

	paths := []string{"/", "/locations", "/menu/mission-valley", "/order-online", "/specials", "/our-story", "/careers", "/contact", "/faq", "/reviews"}
	for _, path := range paths {
		rec := doRequest(s, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s content type = %q", path, ct)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rec.Header().Get("Content-Security-Policy"); got == "" {
		t.Error("Content-Security-Policy missing")
	}

	cfg := testConfig()
	cfg.Security.EnableCSP = false
	s = newTestServer(t, cfg, nil)
	rec = doRequest(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if got := rec.Header().Get("Content-Security-Policy"); got != "" {
		t.Errorf("CSP disabled but header = %q", got)
	}
}

func TestCareersRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Rate.Enabled = true
	cfg.Rate.RequestsPerMinute = 1000
	cfg.Rate.CareersLimit = 2
	relay := &stubRelay{configured: true}
	s := newTestServer(t, cfg, relay)

	var last int
	for i := 0; i < 3; i++ {
		req := newCareersRequest(t, validForm(), pdfBytes())
		req.RemoteAddr = "10.1.2.3:1234"
		last = doRequest(s, req).Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("third submission status = %d, want 429", last)
	}
}

func validForm() map[string]string {
	return map[string]string{
		"name":              "Dana Reyes",
		"email":             "dana@example.com",
		"phone":             "619-555-0134",
		"preferredLocation": "encinitas",
		"message":           "I would love to join the team.",
	}
}

func pdfBytes() []byte {
	return append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 64)...)
}

// newCareersRequest builds a multipart submission with an attached resume.
// A nil resume omits the file part entirely.
func newCareersRequest(t *testing.T, fields map[string]string, resume []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if resume != nil {
		fw, err := mw.CreateFormFile("resume", "resume.pdf")
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write(resume); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/careers", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCareersSubmitSuccess(t *testing.T) {
	relay := &stubRelay{configured: true}
	s := newTestServer(t, nil, relay)

	rec := doRequest(s, newCareersRequest(t, validForm(), pdfBytes()))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var body struct {
		OK bool `json:"ok"`
	}
	decodeJSON(t, rec, &body)
	if !body.OK {
		t.Fatal("response ok = false")
	}
	if len(relay.sent) != 1 {
		t.Fatalf("relay sent %d messages, want 1", len(relay.sent))
	}
	if relay.sent[0].Attachment.Filename != "resume.pdf" {
		t.Errorf("attachment filename = %q", relay.sent[0].Attachment.Filename)
	}
}

func TestCareersSubmitMissingFields(t *testing.T) {
	relay := &stubRelay{configured: true}
	s := newTestServer(t, nil, relay)

	fields := validForm()
	fields["email"] = ""
	rec := doRequest(s, newCareersRequest(t, fields, pdfBytes()))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if body.Message != "Please fill out all required fields." {
		t.Errorf("message = %q", body.Message)
	}
	if len(relay.sent) != 0 {
		t.Errorf("relay sent %d messages, want 0", len(relay.sent))
	}
}

func TestCareersSubmitMissingResume(t *testing.T) {
	relay := &stubRelay{configured: true}
	s := newTestServer(t, nil, relay)

	rec := doRequest(s, newCareersRequest(t, validForm(), nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if body.Message != "Please attach your resume (PDF or DOCX)." {
		t.Errorf("message = %q", body.Message)
	}
}

func TestCareersSubmitHoneypot(t *testing.T) {
	relay := &stubRelay{configured: true}
	s := newTestServer(t, nil, relay)

	fields := validForm()
	fields["website"] = "https://spam.example.com"
	rec := doRequest(s, newCareersRequest(t, fields, pdfBytes()))

	// Bots get a success response but nothing is sent.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(relay.sent) != 0 {
		t.Fatalf("relay sent %d messages, want 0", len(relay.sent))
	}
}

func TestCareersSubmitUnconfiguredMail(t *testing.T) {
	relay := &stubRelay{configured: false}
	s := newTestServer(t, nil, relay)

	rec := doRequest(s, newCareersRequest(t, validForm(), pdfBytes()))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if !strings.Contains(body.Message, "SMTP_HOST") {
		t.Errorf("message = %q, want operator instruction", body.Message)
	}
}

func TestCareersSubmitOversizeBody(t *testing.T) {
	cfg := testConfig()
	cfg.Careers.MaxResumeBytes = 1024
	relay := &stubRelay{configured: true}
	s := newTestServer(t, cfg, relay)

	big := bytes.Repeat([]byte("x"), 2<<20)
	rec := doRequest(s, newCareersRequest(t, validForm(), append([]byte("%PDF-1.4\n"), big...)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(relay.sent) != 0 {
		t.Errorf("relay sent %d messages, want 0", len(relay.sent))
	}
}

func TestShoppingLocationEventsInitialState(t *testing.T) {
	s := newTestServer(t, nil, nil)

	// Record a selection first so the stream has state to report.
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/shopping-location", nil))
	cookie := sessionCookie(t, rec)
	req := httptest.NewRequest(http.MethodPut, "/api/shopping-location",
		strings.NewReader(`{"slug":"encinitas"}`))
	req.AddCookie(cookie)
	doRequest(s, req)

	// A pre-cancelled context lets the handler emit the initial event and
	// return instead of blocking on the stream.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req = httptest.NewRequest(http.MethodGet, "/api/shopping-location/events", nil).WithContext(ctx)
	req.AddCookie(cookie)
	rec = doRequest(s, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q, want text/event-stream", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "event: shopping-location") {
		t.Errorf("body missing event line: %q", body)
	}
	if !strings.Contains(body, `"slug":"encinitas"`) {
		t.Errorf("body missing selection: %q", body)
	}
}

// readEventData returns the data payload of the next non-comment event on
// an SSE stream.
func readEventData(t *testing.T, r *bufio.Reader) string {
	t.Helper()
	var data string
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("read stream: %v", err)
		}
		line = strings.TrimRight(line, "\n")
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
		}
		if line == "" && data != "" {
			return data
		}
	}
}

// The event stream must reach a real network client: events are flushed
// through the whole middleware chain, and the stream outlives the request
// timeout applied to ordinary routes.
func TestShoppingLocationEventsStreamOverNetwork(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RequestTimeout = 100 * time.Millisecond
	s := newTestServer(t, cfg, nil)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	// Establish a session.
	resp, err := http.Get(ts.URL + "/api/shopping-location")
	if err != nil {
		t.Fatalf("establish session: %v", err)
	}
	resp.Body.Close()
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no session cookie set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/shopping-location/events", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.AddCookie(cookie)
	stream, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer stream.Body.Close()
	if ct := stream.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q, want text/event-stream", ct)
	}

	reader := bufio.NewReader(stream.Body)
	first := readEventData(t, reader)
	if !strings.Contains(first, "mission-valley") {
		t.Errorf("initial event = %s, want default location", first)
	}

	// Outlive the request timeout, then push a change on the session.
	time.Sleep(300 * time.Millisecond)
	put, err := http.NewRequest(http.MethodPut, ts.URL+"/api/shopping-location",
		strings.NewReader(`{"slug":"coronado"}`))
	if err != nil {
		t.Fatal(err)
	}
	put.AddCookie(cookie)
	putResp, err := http.DefaultClient.Do(put)
	if err != nil {
		t.Fatalf("record selection: %v", err)
	}
	putResp.Body.Close()
	if putResp.StatusCode != http.StatusOK {
		t.Fatalf("put status = %d, want 200", putResp.StatusCode)
	}

	second := readEventData(t, reader)
	if !strings.Contains(second, `"slug":"coronado"`) {
		t.Fatalf("change event = %s, want coronado", second)
	}
}

func TestSelectionMetricLabelBounded(t *testing.T) {
	s := newTestServer(t, nil, nil)

	otherBefore := testutil.ToFloat64(metrics.ShoppingSelectionsTotal.WithLabelValues("other"))
	req := httptest.NewRequest(http.MethodPut, "/api/shopping-location",
		strings.NewReader(`{"slug":"totally-made-up"}`))
	rec := doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", rec.Code)
	}
	otherAfter := testutil.ToFloat64(metrics.ShoppingSelectionsTotal.WithLabelValues("other"))
	if otherAfter != otherBefore+1 {
		t.Errorf("other series = %v, want %v", otherAfter, otherBefore+1)
	}

	knownBefore := testutil.ToFloat64(metrics.ShoppingSelectionsTotal.WithLabelValues("coronado"))
	req = httptest.NewRequest(http.MethodPut, "/api/shopping-location",
		strings.NewReader(`{"slug":"coronado"}`))
	rec = doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", rec.Code)
	}
	knownAfter := testutil.ToFloat64(metrics.ShoppingSelectionsTotal.WithLabelValues("coronado"))
	if knownAfter != knownBefore+1 {
		t.Errorf("coronado series = %v, want %v", knownAfter, knownBefore+1)
	}
}

func TestMarketingLinksResolve(t *testing.T) {
	s := newTestServer(t, nil, nil)
	for _, h := range content.MarketingHighlights {
		rec := doRequest(s, httptest.NewRequest(http.MethodGet, h.Href, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", h.Href, rec.Code)
		}
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, c := range res.Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}
