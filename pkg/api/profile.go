package api

// Profile представляет singleton-профиль владельца портфолио
type Profile struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Image    string `json:"image,omitempty"`  // путь к аватару на сервере
	Resume   string `json:"resume,omitempty"` // путь к резюме на сервере
}

// UploadResponse представляет ответ POST /api/profile/image и /api/profile/resume
type UploadResponse struct {
	Error      string `json:"error,omitempty"`
	ImagePath  string `json:"imagePath,omitempty"`
	ResumePath string `json:"resumePath,omitempty"`
	Success    bool   `json:"success"`
}

// ReadToggleRequest представляет запрос PUT /api/messages/<id>
type ReadToggleRequest struct {
	Read bool `json:"read"`
}
