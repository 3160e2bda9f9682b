package handler

import (
	"github.com/labstack/echo/v4"
)

// NewTestEcho はテスト用のEchoインスタンスを作成する
func NewTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	return e
}
