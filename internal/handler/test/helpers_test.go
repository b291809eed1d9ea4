package test

import (
	"github.com/stretchr/testify/mock"
)

var mockCtx = mock.Anything

func strPtr(s string) *string {
	return &s
}
