// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/hyperline/engine/util/logger"

var log = logger.New("SCENE", logger.Default)
