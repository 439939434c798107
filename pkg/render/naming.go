package render

import (
	"path/filepath"
	"strings"

	"github.com/akeil/atlastool"
)

const (
	tokenView        = "[VIEWTYPE-"
	tokenFile        = "[FILE-"
	tokenAnimation   = "[ANIMATION-"
	tokenPerspective = "[PERSPECTIVE-"
)

// RenderName holds the tokens the render script encodes in each file name,
// e.g. "[VIEWTYPE-TopDown][FILE-knight][ANIMATION-walk][PERSPECTIVE-0]0001.png".
type RenderName struct {
	View        string
	File        string
	Animation   string
	Perspective string
}

// ParseRenderName extracts the tokens from the base name of filename.
func ParseRenderName(filename string) (RenderName, error) {
	base := filepath.Base(filename)
	var n RenderName
	var err error

	n.View, err = findToken(base, tokenView)
	if err != nil {
		return n, err
	}
	n.File, err = findToken(base, tokenFile)
	if err != nil {
		return n, err
	}
	n.Animation, err = findToken(base, tokenAnimation)
	if err != nil {
		return n, err
	}
	n.Perspective, err = findToken(base, tokenPerspective)
	if err != nil {
		return n, err
	}

	return n, nil
}

// GroupKey returns the sprite group for the frame,
// "file.view.animation.perspective".
func (n RenderName) GroupKey() string {
	return strings.Join([]string{n.File, n.View, n.Animation, n.Perspective}, ".")
}

func findToken(s, token string) (string, error) {
	idx := strings.Index(s, token)
	if idx < 0 {
		return "", atlastool.NewValidationError("could not find '%sname]' in file %q", token, s)
	}
	v := s[idx+len(token):]
	end := strings.Index(v, "]")
	if end < 0 {
		return "", atlastool.NewValidationError("unterminated '%s' in file %q", token, s)
	}
	return strings.TrimSpace(v[:end]), nil
}
