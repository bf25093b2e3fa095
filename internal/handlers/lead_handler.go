package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"estateFront/internal/models"
	"estateFront/internal/services"
	"estateFront/utils"
)

// maxSellPropertyMemory caps the in-memory share of the multipart parse;
// larger uploads spill to temp files.
const maxSellPropertyMemory = 32 << 20

type LeadHandler struct {
	Service *services.LeadService
}

func (h *LeadHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var lead models.ContactLead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	msg, err := h.Service.SubmitContact(r.Context(), lead)
	if err != nil {
		leadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (h *LeadHandler) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	var enquiry models.BuySellEnquiry
	if err := json.NewDecoder(r.Body).Decode(&enquiry); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	msg, err := h.Service.SubmitEnquiry(r.Context(), enquiry)
	if err != nil {
		leadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// SubmitSellProperty accepts the multipart sell form: text fields plus any
// number of "images" files and one optional "video" file.
func (h *LeadHandler) SubmitSellProperty(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSellPropertyMemory); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	lead := models.SellPropertyLead{
		Name:          strings.TrimSpace(r.FormValue("name")),
		Phone:         strings.TrimSpace(r.FormValue("phone")),
		Email:         strings.TrimSpace(r.FormValue("email")),
		City:          strings.TrimSpace(r.FormValue("city")),
		PropertyType:  strings.TrimSpace(r.FormValue("propertyType")),
		ExpectedPrice: strings.TrimSpace(r.FormValue("expectedPrice")),
		Description:   strings.TrimSpace(r.FormValue("description")),
	}

	images, err := readFormFiles(r.MultipartForm.File["images"])
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Could not read uploaded images")
		return
	}
	var video *models.MediaFile
	if headers := r.MultipartForm.File["video"]; len(headers) > 0 {
		files, err := readFormFiles(headers[:1])
		if err != nil {
			jsonError(w, http.StatusBadRequest, "Could not read uploaded video")
			return
		}
		video = &files[0]
	}

	msg, err := h.Service.SubmitSellProperty(r.Context(), lead, images, video, func(percent int) {
		utils.Logger.Debugf("sell-property upload at %d%%", percent)
	})
	if err != nil {
		leadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Mailto builds the mailto: fallback link for the static forms.
func (h *LeadHandler) Mailto(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	link := h.Service.MailtoLink(q.Get("subject"), q.Get("body"))
	writeJSON(w, http.StatusOK, map[string]string{"href": link})
}

func readFormFiles(headers []*multipart.FileHeader) ([]models.MediaFile, error) {
	var files []models.MediaFile
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, models.MediaFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}

// leadError separates form validation failures from backend failures.
func leadError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		jsonError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}
	backendError(w, err)
}
