package handler

import "github.com/schooldesk/school-api/internal/core/domain"

// registerRequest documents the registration body. The handler validates the
// raw record so that missing and malformed fields are told apart.
type registerRequest struct {
	SchoolName       string `json:"schoolName" example:"Greenfield Academy"`
	InstitutionLevel string `json:"institutionLevel" example:"Secondary"`
	Address          string `json:"address" example:"12 Market Street, Lagos"`
	Email            string `json:"email" example:"admin@greenfield.edu"`
	PhoneNumber      string `json:"phoneNumber" example:"+2348012345678"`
	Password         string `json:"password" example:"Str0ng!pass"`
	ConfirmPassword  string `json:"confirmPassword" example:"Str0ng!pass"`
	Country          string `json:"country" example:"Nigeria"`
	Currency         string `json:"currency" example:"NGN"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdateRequest struct {
	SchoolName       string `json:"schoolName,omitempty"`
	InstitutionLevel string `json:"institutionLevel,omitempty"`
	Address          string `json:"address,omitempty"`
	Email            string `json:"email,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	Country          string `json:"country,omitempty"`
	Currency         string `json:"currency,omitempty"`
	BackdropImage    string `json:"backdropImage,omitempty"`
	AvatarImage      string `json:"avatarImage,omitempty"`
}

type authResponse struct {
	Token  string         `json:"token"`
	School *domain.School `json:"school"`
}

// errorBody documents the error envelope rendered by the HTTP error handler.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
