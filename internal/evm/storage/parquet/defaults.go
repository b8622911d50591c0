package parquet

const (
	filePrefix     = "blocks_"
	fileExt        = ".parquet"
	fileTimeLayout = "20060102_150405"

	maxNameAttempts = 1000

	dirPerm  = 0o755
	filePerm = 0o644
)
