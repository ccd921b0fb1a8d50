package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldPrefillPrependsPageContext(t *testing.T) {
	fields := map[string]string{"name": "김민수", "message": "상담 요청드립니다."}

	foldPrefill(fields, "전통 정자", "8500000", "outdoor")

	assert.Equal(t, "전통 정자", fields["product"])
	assert.Equal(t, "제품: 전통 정자 / 가격: 8500000 / 카테고리: outdoor\n상담 요청드립니다.", fields["message"])
}

func TestFoldPrefillKeepsExplicitProduct(t *testing.T) {
	fields := map[string]string{"name": "김민수", "product": "모던 파고라"}

	foldPrefill(fields, "전통 정자", "", "")

	assert.Equal(t, "모던 파고라", fields["product"])
	assert.Equal(t, "제품: 전통 정자", fields["message"])
}

func TestFoldPrefillNoParamsIsNoop(t *testing.T) {
	fields := map[string]string{"message": "그대로"}

	foldPrefill(fields, "", "", "")

	assert.Equal(t, "그대로", fields["message"])
}
