package lead

// Status represents where a lead is in the follow-up flow.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusInProgress, StatusCompleted, StatusArchived:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Lead is a normalized customer inquiry. The contact form historically
// posted a mix of English and Korean field names; Normalize folds both
// into this one schema at ingestion so nothing downstream ever does a
// dual-key lookup.
type Lead struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	Name        string            `json:"name" bson:"name"`
	Email       string            `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string            `json:"phone,omitempty" bson:"phone,omitempty"`
	ProjectType string            `json:"projectType,omitempty" bson:"projectType,omitempty"`
	Product     string            `json:"product,omitempty" bson:"product,omitempty"`
	Budget      string            `json:"budget,omitempty" bson:"budget,omitempty"`
	Message     string            `json:"message,omitempty" bson:"message,omitempty"`
	Page        string            `json:"page,omitempty" bson:"page,omitempty"`
	Status      Status            `json:"status" bson:"status"`
	Notes       string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Read        bool              `json:"read" bson:"read"`
	Extra       map[string]string `json:"extra,omitempty" bson:"extra,omitempty"`
	CreatedAt   string            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string            `json:"updatedAt" bson:"updatedAt"`
}

// aliases maps every field name variant seen in stored leads to the
// canonical field. English keys win when both are present.
var aliases = map[string][]string{
	"name":        {"name", "이름"},
	"email":       {"email", "이메일"},
	"phone":       {"phone", "전화번호", "phoneNumber"},
	"projectType": {"projectType", "프로젝트유형"},
	"product":     {"product", "제품"},
	"budget":      {"budget", "예산"},
	"message":     {"message", "문의내용"},
}

// Normalize builds a Lead from a flat form payload, resolving bilingual
// keys once. Unrecognized fields survive in Extra.
func Normalize(form map[string]string) Lead {
	pick := func(field string) string {
		for _, key := range aliases[field] {
			if v, ok := form[key]; ok && v != "" {
				return v
			}
		}
		return ""
	}

	lead := Lead{
		Name:        pick("name"),
		Email:       pick("email"),
		Phone:       pick("phone"),
		ProjectType: pick("projectType"),
		Product:     pick("product"),
		Budget:      pick("budget"),
		Message:     pick("message"),
		Status:      StatusNew,
	}

	known := make(map[string]bool)
	for _, keys := range aliases {
		for _, key := range keys {
			known[key] = true
		}
	}
	for key, value := range form {
		if known[key] || value == "" {
			continue
		}
		if lead.Extra == nil {
			lead.Extra = make(map[string]string)
		}
		lead.Extra[key] = value
	}

	return lead
}
