package domain

import (
	"crimemap/internal/core/crimes"
	perr "crimemap/internal/platform/errors"
)

// NoticeLevel grades a section notice
type NoticeLevel string

// Notice levels
const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice replaces or annotates a section that could not be fully computed
type Notice struct {
	Level   NoticeLevel `json:"level" example:"info"`
	Code    string      `json:"code" example:"INSUFFICIENT_DATA"`
	Message string      `json:"message" example:"Insufficient data to calculate growth rates."`
}

// Section is one dashboard panel
type Section[T any] struct {
	Data   T       `json:"data"`
	Notice *Notice `json:"notice,omitempty"`
}

// NoticeFor maps a section error to the notice shown in its place
func NoticeFor(err error) *Notice {
	if err == nil {
		return nil
	}
	code := perr.CodeOf(err)
	n := &Notice{Level: NoticeError, Code: code.String(), Message: err.Error()}
	switch code {
	case perr.ErrorCodeInsufficientData:
		n.Level = NoticeInfo
		n.Message = crimes.MsgInsufficientGrowth
	case perr.ErrorCodeMissingColumn:
		n.Message = crimes.MsgMissingTotal
	}
	return n
}

// Guard turns a computation into a section, moving any error into the notice
func Guard[T any](data T, err error) Section[T] {
	return Section[T]{Data: data, Notice: NoticeFor(err)}
}

// Warn is Guard with the notice downgraded to a warning
func Warn[T any](data T, err error) Section[T] {
	s := Guard(data, err)
	if s.Notice != nil {
		s.Notice.Level = NoticeWarning
	}
	return s
}
