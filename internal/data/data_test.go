package data

import (
	"time"

	"github.com/anthropics/akashvani/internal/conf"
)

func testLLMConfig() conf.LLMConfig {
	return conf.LLMConfig{
		Host:    "localhost",
		Port:    "11434",
		Timeout: time.Second,
	}
}
