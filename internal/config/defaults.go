// SPDX-License-Identifier: MIT

package config

import (
	"runtime"

	"github.com/spf13/viper"
)

const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultOutputFormat = OutputText
)

// DefaultWorkers is the batch width when none is configured.
var DefaultWorkers = runtime.NumCPU()

// setDefaults registers every key with viper so that environment variables
// reach Unmarshal even when the file does not mention the key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("classify.workers", DefaultWorkers)
	v.SetDefault("classify.simple", false)
	v.SetDefault("classify.maximum_trivial_matching", false)
	v.SetDefault("cache.dir", "")
	v.SetDefault("metrics.file", "")
	v.SetDefault("output.format", DefaultOutputFormat)
}
