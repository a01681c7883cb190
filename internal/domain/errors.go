package domain

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTickerRequired      = errors.New("ticker is required")
	ErrUnknownChartMode    = errors.New("unknown chart mode")
)
