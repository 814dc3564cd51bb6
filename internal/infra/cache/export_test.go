//go:build unit

package cache

const SetIfCurrentScript = setIfCurrent
