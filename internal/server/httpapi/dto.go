package httpapi

import (
	"github.com/shopspring/decimal"

	"github.com/tastehub/menuapi/internal/server/menus"
	"github.com/tastehub/menuapi/internal/server/models"
)

// MenuSummary is the list projection of a menu record. It carries no
// description, created_at, or owner field.
type MenuSummary struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
}

// MenuDetail is the single-record projection: the summary fields plus the
// description. Every summary field is also a detail field.
type MenuDetail struct {
	MenuSummary
	Description string `json:"description"`
}

func toSummary(m *models.Menu) MenuSummary {
	return MenuSummary{
		ID:          m.ID,
		Title:       m.Title,
		TimeMinutes: m.TimeMinutes,
		Price:       m.Price,
	}
}

func toDetail(m *models.Menu) MenuDetail {
	return MenuDetail{
		MenuSummary: toSummary(m),
		Description: m.Description,
	}
}

func toSummaryList(items []*models.Menu) []MenuSummary {
	// empty list serializes as [], not null
	result := make([]MenuSummary, 0, len(items))
	for _, m := range items {
		result = append(result, toSummary(m))
	}
	return result
}

// menuPayload is the client-writable field set. Unknown payload members
// (id, user_id, created_at included) are dropped by decoding, so they are
// accepted syntactically but never applied.
type menuPayload struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

func (p *menuPayload) toInput() menus.MenuInput {
	return menus.MenuInput{
		Title:       p.Title,
		TimeMinutes: p.TimeMinutes,
		Price:       p.Price,
		Description: p.Description,
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type imageUploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}

type imageURLResponse struct {
	URL string `json:"url"`
}
