package server

import (
	"errors"
	"net/http"
	"strings"

	"highfields/pkg/types"
)

func (s *Service) handleListLifeGroups(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeListParams(w, r)
	if !ok {
		return
	}

	groups, err := s.stores.LifeGroups.LifeGroups(r.Context(), params.Limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list life groups")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, groups)
}

func (s *Service) handleLifeGroupSignup(w http.ResponseWriter, r *http.Request) {
	var in types.LifeGroupSignupCreate
	if !s.decodePayload(w, r, &in) {
		return
	}

	signup := &types.LifeGroupSignup{
		GroupID: strings.TrimSpace(in.GroupID),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
	}

	err := s.stores.LifeGroups.Signup(r.Context(), signup)
	if errors.Is(err, types.ErrLifeGroupNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Life group not found"})
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("group_id", signup.GroupID).Error("failed to sign up for life group")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, signup)
}

func (s *Service) handleListSermons(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeListParams(w, r)
	if !ok {
		return
	}

	sermons, err := s.stores.Sermons.Sermons(r.Context(), params.Limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list sermons")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, sermons)
}

func (s *Service) handleGetSermon(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	id := r.PathValue("id")

	sermon, err := s.stores.Sermons.Sermon(ctx, id)
	if errors.Is(err, types.ErrSermonNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Sermon not found"})
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("sermon_id", id).Error("failed to fetch sermon")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, sermon)
}
