package http

// signInRequest is the body of POST /api/v1/auth/sign-in.
type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateStatusRequest is the body of PATCH /api/v1/orders/:id/status.
// Status travels in wire form, e.g. "OUT_FOR_DELIVERY".
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
