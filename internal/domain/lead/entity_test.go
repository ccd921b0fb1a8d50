package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKoreanKeys(t *testing.T) {
	lead := Normalize(map[string]string{
		"이름":      "김민수",
		"이메일":     "kim@example.com",
		"전화번호":    "010-1234-5678",
		"프로젝트유형":  "pension",
		"제품":      "전통 정자",
		"예산":      "3000만원",
		"문의내용":    "견적 문의드립니다",
		"referrer": "naver",
	})

	assert.Equal(t, "김민수", lead.Name)
	assert.Equal(t, "kim@example.com", lead.Email)
	assert.Equal(t, "010-1234-5678", lead.Phone)
	assert.Equal(t, "pension", lead.ProjectType)
	assert.Equal(t, "전통 정자", lead.Product)
	assert.Equal(t, "3000만원", lead.Budget)
	assert.Equal(t, "견적 문의드립니다", lead.Message)
	assert.Equal(t, "naver", lead.Extra["referrer"])
	assert.Equal(t, StatusNew, lead.Status)
}

func TestNormalizePrefersEnglishKeys(t *testing.T) {
	lead := Normalize(map[string]string{
		"name":  "Minsu Kim",
		"이름":    "김민수",
		"phone": "010-1234-5678",
	})

	assert.Equal(t, "Minsu Kim", lead.Name)
	assert.Empty(t, lead.Extra)
}

func TestNormalizePhoneNumberAlias(t *testing.T) {
	lead := Normalize(map[string]string{"phoneNumber": "010-9876-5432"})
	assert.Equal(t, "010-9876-5432", lead.Phone)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"new", "in-progress", "completed", "archived"} {
		status, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), status)
	}

	_, err := ParseStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
