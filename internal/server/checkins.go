package server

import (
	"net/http"
	"strings"
	"time"

	"highfields/internal/utils"
	"highfields/pkg/types"
)

func (s *Service) handleCreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	var in types.CheckInCreate
	if !s.decodePayload(w, r, &in) {
		return
	}

	checkIn := &types.CheckIn{
		Name:        strings.TrimSpace(in.Name),
		Phone:       utils.NormalizeOptional(in.Phone),
		IsFirstTime: in.IsFirstTime,
		Notes:       utils.NormalizeOptional(in.Notes),
	}

	if err := s.stores.CheckIns.CreateCheckIn(ctx, checkIn); err != nil {
		s.logger.WithError(err).Error("failed to create checkin")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, checkIn)
}

func (s *Service) handleListCheckIns(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeListParams(w, r)
	if !ok {
		return
	}

	checkIns, err := s.stores.CheckIns.CheckIns(r.Context(), params.Limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list checkins")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, checkIns)
}

// handleTodayCheckIns lists check-ins since midnight UTC.
func (s *Service) handleTodayCheckIns(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	checkIns, err := s.stores.CheckIns.CheckInsSince(r.Context(), since)
	if err != nil {
		s.logger.WithError(err).Error("failed to list today's checkins")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, checkIns)
}
