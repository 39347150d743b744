package customer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Unit 客户所属单位，仅保存名称
type Unit struct {
	Unit string `json:"unit"`
}

// Customer 客户记录，仅存在于客户端
type Customer struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	Unit            Unit   `json:"unit"`
	Email           string `json:"email"`
	Number          int64  `json:"number"`
	MovingDate      Date   `json:"movingDate"`
	LastContactDate Date   `json:"lastContactDate"`
}

const dateLayout = "2006-01-02"

// Date 日期，JSON 中接受 2006-01-02 或 RFC3339
type Date struct {
	time.Time
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("日期必须为字符串: %w", err)
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("无法解析日期 %q", raw)
}
