// gen for home clientgen
package commands

import (
	app "github.com/go-home-admin/home/bootstrap/services/app"
)

var _ClientCommandSingle *ClientCommand
var _DevCommandSingle *DevCommand

func GetAllProvider() []interface{} {
	return []interface{}{
		NewClientCommand(),
		NewDevCommand(),
	}
}

func NewClientCommand() *ClientCommand {
	if _ClientCommandSingle == nil {
		_ClientCommandSingle = &ClientCommand{}
		app.AfterProvider(_ClientCommandSingle, "")
	}
	return _ClientCommandSingle
}
func NewDevCommand() *DevCommand {
	if _DevCommandSingle == nil {
		_DevCommandSingle = &DevCommand{}
		app.AfterProvider(_DevCommandSingle, "")
	}
	return _DevCommandSingle
}
