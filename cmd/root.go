/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/translate-api/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "translate-api",
	Short: "Language Translation REST API",
	Long: `A REST API that translates text between languages, delegating the
actual translation to an external provider (Google Translate or MyMemory).

Endpoints: /api/v1/translate, /api/v1/detect, /api/v1/history.
Authentication uses an API key in the X-API-Key header.

Use "translate-api serve" to start the server.`,
	Version: server.Version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
