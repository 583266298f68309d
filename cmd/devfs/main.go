/*
devfs resolves request URLs against a build output filesystem, the same way
a development server would when deciding which file to serve.

The output filesystem and mount points come from a configuration file (see the
config package), so all URL schemes supported by the outputfs package can be
used.

# Usage

	devfs [flags] <command> ...

	flags:
	  --config string      config file (default $XDG_CONFIG_HOME/devfs/config.yaml)
	  --log-level string   override the configured log level
	  --tracing            enable tracing with OTel

	commands:
	  resolve URL...   print the output file each URL resolves to
	  mounts           list the configured mount points

# Examples

	$ devfs --config devfs.yaml resolve /static/app.js /static/ /missing.js
	/static/app.js -> /client/app.js
	/static/ -> /client/index.html
	/missing.js -> (unresolved)
	Error: unresolved: 1 of 3 URLs

	$ devfs --config devfs.yaml resolve -l /static/app.js
	/static/app.js -> /client/app.js (2.5KiB, text/javascript; charset=utf-8)

	$ devfs --config devfs.yaml mounts
	/static/ /client
	/        /server
*/
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		logrus.WithError(err).Debug("exiting with error")
		os.Exit(1)
	}
}
