package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Feature names the three generation features the backend meters.
type Feature string

const (
	FeatureBlog  Feature = "blog"
	FeatureVideo Feature = "video"
	FeatureImage Feature = "image"
)

// Limit is a per-feature quota. The backend sends either a number or the
// sentinel strings "unlimited"/"inf" for tiers without a cap.
type Limit struct {
	N         int
	Unlimited bool
}

func (l *Limit) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		l.N = int(value)
		l.Unlimited = false
	case string:
		switch value {
		case "unlimited", "inf":
			l.N = 0
			l.Unlimited = true
		default:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid limit %q", value)
			}
			l.N = n
			l.Unlimited = false
		}
	default:
		return fmt.Errorf("invalid limit type %T", v)
	}
	return nil
}

func (l Limit) MarshalJSON() ([]byte, error) {
	if l.Unlimited {
		return json.Marshal("unlimited")
	}
	return json.Marshal(l.N)
}

// String renders the limit for display, using the infinity sign when the
// tier has no cap.
func (l Limit) String() string {
	if l.Unlimited {
		return "∞"
	}
	return strconv.Itoa(l.N)
}

// Usage is the per-feature counter snapshot from GET /auth/me. It is always
// replaced wholesale, never merged field by field.
type Usage struct {
	BlogsGenerated        int   `json:"blogs_generated"`
	BlogsLimit            Limit `json:"blogs_limit"`
	VideoScriptsGenerated int   `json:"video_scripts_generated"`
	VideoScriptsLimit     Limit `json:"video_scripts_limit"`
	ImagesGenerated       int   `json:"images_generated"`
	ImagesLimit           Limit `json:"images_limit"`
	Watermark             bool  `json:"watermark"`
}

// For returns the generated count and limit for a feature.
func (u *Usage) For(f Feature) (int, Limit) {
	switch f {
	case FeatureBlog:
		return u.BlogsGenerated, u.BlogsLimit
	case FeatureVideo:
		return u.VideoScriptsGenerated, u.VideoScriptsLimit
	case FeatureImage:
		return u.ImagesGenerated, u.ImagesLimit
	}
	return 0, Limit{}
}

// Line formats the counter for a feature, e.g. "Used: 2 / ∞".
func (u *Usage) Line(f Feature) string {
	generated, limit := u.For(f)
	return fmt.Sprintf("Used: %d / %s", generated, limit)
}
