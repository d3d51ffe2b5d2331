package models

import (
	"strings"
	"time"
)

// 콘텐츠 API 가 쓰는 타임존 없는 형식들. WP_Post 객체(post_date)는 공백 구분자를 쓴다.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Time 은 RFC3339 와 타임존 없는 콘텐츠 API 날짜 형식을 모두 받아들인다.
// 타임존이 없으면 UTC 로 간주한다.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if v, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = v
		return nil
	}
	var err error
	for _, layout := range localLayouts {
		var v time.Time
		if v, err = time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = v
			return nil
		}
	}
	return err
}
