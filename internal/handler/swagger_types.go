package handler

import (
	"time"

	"tms/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@tms.local"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"ravi.kumar@tms.local"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" example:"Ravi Kumar"`
	Role     domain.UserRole `json:"role" binding:"required" example:"operator"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    *string          `json:"email" example:"ravi.k@tms.local"`
	FullName *string          `json:"full_name" example:"Ravi K"`
	Role     *domain.UserRole `json:"role" example:"admin"`
	IsActive *bool            `json:"is_active" example:"true"`
}

// VendorForm is an example vendor form body. Every module accepts a flat
// JSON object keyed by field name; see GET /modules for the field tables.
type VendorForm struct {
	VendorName     string `json:"vendor_name" example:"Shree Ganesh Transport"`
	VendorPANNo    string `json:"vendor_pan_no" example:"ABCDE1234F"`
	VendorGSTNo    string `json:"vendor_gst_no" example:"27ABCDE1234F1Z5"`
	VendorMobileNo string `json:"vendor_mobile_no" example:"9876543210"`
	IFSCCode       string `json:"ifsc_code" example:"HDFC0001234"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2026-01-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// AttachmentWithDownloadURL represents an attachment with its download URL.
type AttachmentWithDownloadURL struct {
	Attachment  domain.Attachment `json:"attachment"`
	DownloadURL string            `json:"download_url" example:"https://s3.amazonaws.com/tms-attachments/...?X-Amz-Signature=..."`
}

// NextCodeResponse represents a customer code preview.
type NextCodeResponse struct {
	Name string `json:"name" example:"ABC Corporation Ltd"`
	Code string `json:"code" example:"ABC001"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
