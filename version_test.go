/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVersion(t *testing.T) {
	assert.Equal(t, Version(1), NewVersion(1))
	assert.Equal(t, Version(40), NewVersion(40))
	assert.Panics(t, func() { NewVersion(0) })
	assert.Panics(t, func() { NewVersion(41) })
}

func TestVersionSize(t *testing.T) {
	assert.Equal(t, 21, Version(1).size())
	assert.Equal(t, 177, Version(40).size())
}

func TestVersionSizeClass(t *testing.T) {
	assert.Equal(t, 0, Version(1).sizeClass())
	assert.Equal(t, 0, Version(9).sizeClass())
	assert.Equal(t, 1, Version(10).sizeClass())
	assert.Equal(t, 1, Version(26).sizeClass())
	assert.Equal(t, 2, Version(27).sizeClass())
	assert.Equal(t, 2, Version(40).sizeClass())
}
