package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cracktacoshop/site/internal/careers"
	"github.com/cracktacoshop/site/internal/metrics"
)

// formOverhead is headroom on top of the resume cap for the multipart
// framing and the text fields.
const formOverhead = 1 << 20

// handleCareersSubmit accepts a multipart careers application, validates
// it, and relays it to the hiring inbox. Responses are always JSON with an
// ok flag; validation failures carry the specific message, server faults a
// sanitized one.
func (s *Server) handleCareersSubmit(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.Careers.MaxResumeBytes

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+formOverhead)
	if err := r.ParseMultipartForm(maxBytes + formOverhead); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			metrics.CareersSubmissionsTotal.WithLabelValues("input").Inc()
			respondError(w, r, http.StatusBadRequest,
				fmt.Sprintf("Resume too large. Max file size is %dMB.", maxBytes/(1024*1024)), err)
			return
		}
		metrics.CareersSubmissionsTotal.WithLabelValues("input").Inc()
		respondError(w, r, http.StatusBadRequest, "Could not read the submitted form.", err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	sub := careers.Submission{
		Name:              r.FormValue("name"),
		Email:             r.FormValue("email"),
		Phone:             r.FormValue("phone"),
		PreferredLocation: r.FormValue("preferredLocation"),
		Message:           r.FormValue("message"),
		Website:           r.FormValue("website"),
	}

	file, header, err := r.FormFile("resume")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			metrics.CareersSubmissionsTotal.WithLabelValues("input").Inc()
			respondError(w, r, http.StatusBadRequest, "Could not read the attached resume.", readErr)
			return
		}
		sub.Resume = &careers.Resume{
			Filename:     header.Filename,
			DeclaredMime: header.Header.Get("Content-Type"),
			Data:         data,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		metrics.CareersSubmissionsTotal.WithLabelValues("input").Inc()
		respondError(w, r, http.StatusBadRequest, "Could not read the attached resume.", err)
		return
	}

	if sub.TrapTripped() {
		metrics.CareersHoneypotTotal.Inc()
	}

	if serr := s.careers.Submit(r.Context(), &sub); serr != nil {
		metrics.CareersSubmissionsTotal.WithLabelValues(outcomeLabel(serr.Class)).Inc()
		respondError(w, r, statusFor(serr.Class), serr.Message, serr.Err)
		return
	}

	metrics.CareersSubmissionsTotal.WithLabelValues("accepted").Inc()
	writeJSON(w, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

func outcomeLabel(class careers.Class) string {
	switch class {
	case careers.ClassInput:
		return "input"
	case careers.ClassConfig:
		return "config"
	case careers.ClassDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}
