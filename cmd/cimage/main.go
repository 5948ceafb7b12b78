/*
Copyright 2026 The containerimage-go Authors.

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

// Command cimage is a thin CLI over the containerimage-go library,
// exercising reference parsing, manifest/config introspection, size
// aggregation and diffing against a real OCI Distribution registry.
package main

import "github.com/whatsacomputertho/containerimage-go/cmd/cimage/cmd"

func main() {
	cmd.Execute()
}
