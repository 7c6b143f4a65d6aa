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

/*
Package cli provides the root command for awsclient.

The root command carries the global flags and the help command. Command groups
live in the internal/commands subpackages and are added by main.

# Command Tree

	awsclient
	├── configure     Write the config file and keyring credentials
	├── widgets       restJson1 sample service
	├── streams       awsJson1_1 sample service
	├── identity      awsQuery sample service
	├── compute       ec2Query sample service
	├── objects       restXml sample service
	├── version       Show version
	└── help          Show help

# Global Flags

	--config         Path to config file
	--region         Region to send requests to
	--endpoint-url   Endpoint override
	--profile        Credentials profile
	--query          jq expression applied to output
	--output, -o     json or text
	--debug          Debug logging

# Exit Codes

  - 0: Success
  - 1: General error
  - 2: Invalid input (flags, arguments, or request validation)
  - 3: Configuration error
  - 4: Service returned an error
  - 5: Timed out
*/
package cli
