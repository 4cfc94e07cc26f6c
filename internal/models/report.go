package models

import (
	"time"
)

// VerificationCounts - счетчики откликов сообщества по инциденту.
// Значения неотрицательны и не убывают между снапшотами.
type VerificationCounts struct {
	Yes    int `json:"yes"`
	No     int `json:"no"`
	Unsure int `json:"unsure"`
}

// RelatedReport - заявка гражданина, привязанная к инциденту
type RelatedReport struct {
	ReporterID  *int64    `json:"reporter_id,omitempty"` // nil - анонимная заявка
	Description string    `json:"description"`
	MediaURL    *string   `json:"media_url,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Similarity  *float64  `json:"similarity,omitempty"`
}

// GuidanceItem - рекомендация для заявителя, подбирается по типу инцидента
type GuidanceItem struct {
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	Icon        string `json:"icon"`
}

// ReportSubmission - данные новой заявки гражданина
type ReportSubmission struct {
	Type        IncidentType
	Description string
	Latitude    float64
	Longitude   float64
	UserID      string
	MediaName   string
	Media       []byte
}

// UserReportStatus - состояние собственной заявки гражданина
type UserReportStatus struct {
	IncidentID    string  `json:"incident_id"`
	Status        Status  `json:"status"`
	Claimed       bool    `json:"claimed"`
	ResponderName *string `json:"responder_name,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	Note          *string `json:"responder_note,omitempty"`
	ETA           *string `json:"eta,omitempty"`
}

// ResponderRegistration - данные регистрации ответственного
type ResponderRegistration struct {
	Name      string
	Role      string
	ProofName string
	Proof     []byte
}
