package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionInfo(t *testing.T) {
	info := VersionInfo()
	assert.Equal(t, GetVersion(), info["version"])
	assert.Equal(t, Build, info["build"])
	assert.Equal(t, GitCommit, info["commit"])
	assert.Contains(t, GetFullVersion(), "commit: "+GitCommit)
}

func TestSafeGoRecoversPanic(t *testing.T) {
	done := make(chan struct{})
	SafeGo(nil, "test", func() {
		defer close(done)
		panic("boom")
	})
	<-done
}
