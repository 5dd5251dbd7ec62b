package dto

type SignupDTO struct {
	Name            string   `json:"name" validate:"required,name_spacial_char,max=120"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,password"`
	Role            string   `json:"role" validate:"required,role"`
	StudentID       *string  `json:"studentID" validate:"required_if=Role student,omitempty,max=64"`
	Institution     *string  `json:"institution" validate:"omitempty,max=200"`
	AdminKey        *string  `json:"adminKey"`
	FaceImages      []string `json:"faceImages" validate:"omitempty,max=10"`
	FaceDescriptors [][]any  `json:"faceDescriptors" validate:"omitempty,max=10"`
}

// HasFaceData reports whether any enrollment material was supplied.
func (s *SignupDTO) HasFaceData() bool {
	return len(s.FaceImages) > 0 || len(s.FaceDescriptors) > 0
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,role"`
	FaceCredentialsDTO
}

// FaceCredentialsDTO carries a login face capture, either extracted on the
// client or as an image for server side extraction.
type FaceCredentialsDTO struct {
	FaceDescriptor []any   `json:"faceDescriptor"`
	FaceImage      *string `json:"faceImage"`
}

func (f *FaceCredentialsDTO) Supplied() bool {
	return len(f.FaceDescriptor) > 0 || (f.FaceImage != nil && *f.FaceImage != "")
}
