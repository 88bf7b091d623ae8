// Copyright 2025 The Subnetctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	subnetcmd "github.com/subnetctl/subnetctl/cmd/subnetctl/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
		// An interactive session being interrupted is a normal way out,
		// not a failure.
		pterm.Println()
		pterm.Warning.Println("Interrupted.")
		os.Exit(0)
	}()
	cmd := subnetcmd.NewRootCommand(ctx)
	cobra.CheckErr(cmd.Execute())
}
