package server

import (
	"net/http"
	"strings"

	"highfields/internal/utils"
	"highfields/pkg/types"
)

func (s *Service) handleCreateVolunteer(w http.ResponseWriter, r *http.Request) {
	var in types.VolunteerCreate
	if !s.decodePayload(w, r, &in) {
		return
	}

	volunteer := &types.Volunteer{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		MinistryAreas: in.MinistryAreas,
		Availability:  strings.TrimSpace(in.Availability),
		Notes:         utils.NormalizeOptional(in.Notes),
	}

	if err := s.stores.Volunteers.CreateVolunteer(r.Context(), volunteer); err != nil {
		s.logger.WithError(err).Error("failed to create volunteer")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, volunteer)
}

func (s *Service) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeListParams(w, r)
	if !ok {
		return
	}

	volunteers, err := s.stores.Volunteers.Volunteers(r.Context(), params.Limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list volunteers")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, volunteers)
}

func (s *Service) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	var in types.DonationCreate
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if !s.decodeBody(w, body, &in) {
		return
	}

	// the type is optional on the wire
	if in.DonationType == "" {
		in.DonationType = types.DonationTypeOneTime
	}

	if !s.validatePayload(w, &in) {
		return
	}

	donation := &types.Donation{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Amount:       in.Amount,
		DonationType: in.DonationType,
		Message:      utils.NormalizeOptional(in.Message),
	}

	if err := s.stores.Donations.CreateDonation(r.Context(), donation); err != nil {
		s.logger.WithError(err).Error("failed to record donation intent")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, donation)
}

func (s *Service) handleListDonations(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeListParams(w, r)
	if !ok {
		return
	}

	donations, err := s.stores.Donations.Donations(r.Context(), params.Limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list donations")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, donations)
}

func (s *Service) handleCreateConnectRequest(w http.ResponseWriter, r *http.Request) {
	var in types.ConnectRequestCreate
	if !s.decodePayload(w, r, &in) {
		return
	}

	interest := strings.TrimSpace(in.Interest)
	if interest == "" {
		interest = types.DefaultConnectInterest
	}

	request := &types.ConnectRequest{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Interest: interest,
	}

	if err := s.stores.ConnectRequests.CreateConnectRequest(r.Context(), request); err != nil {
		s.logger.WithError(err).Error("failed to create connect request")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, request)
}

func (s *Service) handleListConnectRequests(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeListParams(w, r)
	if !ok {
		return
	}

	requests, err := s.stores.ConnectRequests.ConnectRequests(r.Context(), params.Limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list connect requests")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, requests)
}
