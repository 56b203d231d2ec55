// Copyright 2026 The Gradkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package meter tracks running averages of scalar series.
package meter

import "github.com/robust-ml/gradkit/internal/meter"

// Average accumulates a weighted running average. The zero value is ready
// to use.
type Average = meter.Average
