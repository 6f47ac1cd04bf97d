package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryPositiveInt — целое из query; мусор и значения <= 0 заменяются дефолтом.
func QueryPositiveInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// QueryPositiveInt64 — то же для int64; 0 означает «не задано».
func QueryPositiveInt64(c *gin.Context, name string) int64 {
	v, err := strconv.ParseInt(c.DefaultQuery(name, "0"), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
