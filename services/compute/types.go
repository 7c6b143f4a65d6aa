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

package compute

// Filter narrows a describe call to resources whose Name attribute matches one of
// Values.
type Filter struct {
	Name   *string
	Values []string
}

// Region is one region the account can use.
type Region struct {
	RegionName  *string
	Endpoint    *string
	OptInStatus *string
}
