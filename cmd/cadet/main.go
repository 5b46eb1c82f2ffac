// Package main 启动应用程序
package main

import "github.com/chrisgzf/cadet/pkg/cmd"

//	@title			Cadet API
//	@version		1.0
//	@description	Cadet 是一个课程内容目录服务，管理课程资料、课堂录播、目录树与讨论组。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
