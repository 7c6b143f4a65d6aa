// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package widgets

import (
	"time"
)

// WidgetStatus is the lifecycle status of a widget.
type WidgetStatus string

const (
	WidgetStatusCreating WidgetStatus = "CREATING"
	WidgetStatusActive   WidgetStatus = "ACTIVE"
	WidgetStatusDeleting WidgetStatus = "DELETING"
	WidgetStatusFailed   WidgetStatus = "FAILED"
)

// Values returns all known values of WidgetStatus.
func (WidgetStatus) Values() []WidgetStatus {
	return []WidgetStatus{
		WidgetStatusCreating,
		WidgetStatusActive,
		WidgetStatusDeleting,
		WidgetStatusFailed,
	}
}

// Widget describes one widget.
type Widget struct {
	Id        *string
	Name      *string
	Status    WidgetStatus
	CreatedAt *time.Time
	Tags      map[string]string
}
