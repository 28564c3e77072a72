package server

import (
	"net/http"
	"strings"

	"highfields/internal/utils"
	"highfields/pkg/types"
)

func (s *Service) handleCreatePrayerRequest(w http.ResponseWriter, r *http.Request) {
	var in types.PrayerRequestCreate
	if !s.decodePayload(w, r, &in) {
		return
	}

	request := &types.PrayerRequest{
		Name:        utils.NormalizeOptional(in.Name),
		Request:     strings.TrimSpace(in.Request),
		IsAnonymous: in.IsAnonymous,
	}
	if request.IsAnonymous {
		request.Name = nil
	}

	if err := s.stores.PrayerRequests.CreatePrayerRequest(r.Context(), request); err != nil {
		s.logger.WithError(err).Error("failed to submit prayer request")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, request)
}

func (s *Service) handleListPrayerRequests(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeListParams(w, r)
	if !ok {
		return
	}

	requests, err := s.stores.PrayerRequests.LatestPrayerRequests(r.Context(), params.Limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list prayer requests")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, requests)
}

func (s *Service) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var in types.QuestionCreate
	if !s.decodePayload(w, r, &in) {
		return
	}

	question := &types.Question{
		Name:        utils.NormalizeOptional(in.Name),
		Email:       utils.NormalizeOptional(in.Email),
		Question:    strings.TrimSpace(in.Question),
		IsAnonymous: in.IsAnonymous,
	}
	if question.IsAnonymous {
		question.Name = nil
		question.Email = nil
	}

	if err := s.stores.Questions.CreateQuestion(r.Context(), question); err != nil {
		s.logger.WithError(err).Error("failed to submit question")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, question)
}
