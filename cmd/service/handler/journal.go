package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "github.com/roamlog/roam-api/internal/logic/v1"
	"github.com/roamlog/roam-api/internal/response"
	"github.com/roamlog/roam-api/pkg/errors"
	"github.com/roamlog/roam-api/pkg/i18n"
	"github.com/roamlog/roam-api/pkg/utils"
)

func (s *HttpSrv) ListJournalEntries(c *gin.Context) {
	list, err := v1.NewJournalLogic(c, s.Core).ListEntries()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}

func (s *HttpSrv) ListCountryJournalEntries(c *gin.Context) {
	list, err := v1.NewJournalLogic(c, s.Core).ListEntriesForCountry(c.Param("countryCode"))
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}

func (s *HttpSrv) GetCountryStatus(c *gin.Context) {
	status, err := v1.NewJournalLogic(c, s.Core).GetStatus(c.Param("countryCode"))
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, status)
}

type CreateJournalEntryRequest struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	Entry       string `json:"entry"`
	VisitStatus string `json:"visitStatus"`
}

// CreateJournalEntry always records the country status; a journal entry row is
// only written when the entry text is non-blank. The response body is the
// created entry, or just the status for a status-only request.
func (s *HttpSrv) CreateJournalEntry(c *gin.Context) {
	var req CreateJournalEntryRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, status, err := v1.NewJournalLogic(c, s.Core).UpsertEntry(req.CountryCode, req.CountryName, req.Entry, req.VisitStatus)
	if err != nil {
		response.APIError(c, err)
		return
	}

	if entry != nil {
		response.APICreated(c, entry)
		return
	}
	response.APICreated(c, status)
}

type UpdateJournalEntryRequest struct {
	Entry       string `json:"entry"`
	VisitStatus string `json:"visitStatus"`
}

// UpdateJournalEntry treats blank fields as "keep the stored value". An
// unparseable id can never match a row, so it gets the same not-found answer.
func (s *HttpSrv) UpdateJournalEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.APIError(c, errors.New("UpdateJournalEntry.ParseInt", i18n.ERROR_ENTRY_NOTFOUND, err).Code(http.StatusNotFound))
		return
	}

	var req UpdateJournalEntryRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).UpdateEntry(id, optional(req.Entry), optional(req.VisitStatus))
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, entry)
}

func (s *HttpSrv) DeleteJournalEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.APIError(c, errors.New("DeleteJournalEntry.ParseInt", i18n.ERROR_ENTRY_NOTFOUND, err).Code(http.StatusNotFound))
		return
	}

	if err := v1.NewJournalLogic(c, s.Core).DeleteEntry(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APINoContent(c)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
