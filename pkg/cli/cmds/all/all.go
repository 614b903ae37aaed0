// Package all registers every shell command provider.
package all

import (
	_ "github.com/robotalks/adio.go/pkg/cli/cmds/adc"
	_ "github.com/robotalks/adio.go/pkg/cli/cmds/dac"
	_ "github.com/robotalks/adio.go/pkg/cli/cmds/enc"
	_ "github.com/robotalks/adio.go/pkg/cli/cmds/gpio"
	_ "github.com/robotalks/adio.go/pkg/cli/cmds/pwm"
)
