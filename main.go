package main

import (
	"git.wavelength.fm/wvl/wvl/src/cli"
	_ "git.wavelength.fm/wvl/wvl/src/devs3"
	_ "git.wavelength.fm/wvl/wvl/src/importtool"
	_ "git.wavelength.fm/wvl/wvl/src/migration"
)

func main() {
	cli.WvlCommand.Execute()
}
