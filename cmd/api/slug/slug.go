package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify 는 사람이 읽는 이름을 카테고리/태그 slug 로 바꾼다.
// 소문자로 바꾸고 공백 구간을 하나의 '-' 로 합친다. 여러 번 적용해도 결과가 같다.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// Deslugify 는 slug 를 화면 표시용 제목으로 되돌린다. ("black-life" -> "Black Life")
func Deslugify(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	// Caser 는 상태를 가지므로 호출마다 새로 만든다.
	return cases.Title(language.English).String(strings.Join(words, " "))
}
