// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/shelfwise/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, slice.Map([]string{" a", "b "}, strings.TrimSpace))
	assert.NotNil(t, slice.Map[string, string](nil, strings.TrimSpace))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"Fantasy", "Crime"}, slice.Unique([]string{"Fantasy", "Crime", "Fantasy"}))
	assert.Empty(t, slice.Unique[int](nil))
}
