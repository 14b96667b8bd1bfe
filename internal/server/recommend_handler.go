// Package server provides the HTTP REST API for the alumni network.
package server

import (
	"net/http"

	"github.com/jonathan/alumni-connect/internal/server/middleware"
)

// handleRecommendMentors returns ranked mentor recommendations for the
// authenticated user.
func (s *Server) handleRecommendMentors(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := s.engine.RecommendMentors(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRecommendCareerPaths returns ranked career path recommendations for
// the authenticated user.
func (s *Server) handleRecommendCareerPaths(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := s.engine.RecommendCareerPaths(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
