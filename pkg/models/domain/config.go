package domain

import "fmt"

type EngineKind string

const (
	EngineMemory EngineKind = "memory"
	EngineDuckDB EngineKind = "duckdb"
)

func ParseEngineKind(s string) (EngineKind, error) {
	switch EngineKind(s) {
	case EngineMemory, "":
		return EngineMemory, nil
	case EngineDuckDB:
		return EngineDuckDB, nil
	default:
		return "", fmt.Errorf("unknown engine %q", s)
	}
}
