package parquet

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	WriterMetrics interface {
		ObserveFlush(err error, blocks int, started time.Time)
		ObserveRotate(err error)
	}
)
