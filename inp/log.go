// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// logFile holds a handle to the log file
var logFile *os.File

// InitLogFile initialises logger; log messages go to dirout/fnkey.log
func InitLogFile(dirout, fnkey string) (err error) {

	// create log file
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	logFile, err = os.Create(io.Sf("%s/%s.log", dirout, fnkey))
	if err != nil {
		return
	}

	// connect logger to this file
	log.SetOutput(logFile)
	return
}

// Log logs a formatted message; quiet until InitLogFile has been called
func Log(format string, prm ...interface{}) {
	if logFile != nil {
		log.Printf(format, prm...)
	}
}

// LogErr logs an error and returns it decorated with msg
func LogErr(err error, msg string) error {
	if err != nil {
		res := chk.Err("%s: %v", msg, err)
		if logFile != nil {
			log.Printf("ERROR: %v", res)
		}
		return res
	}
	return nil
}

// FlushLog saves the log file to disk
func FlushLog() {
	if logFile != nil {
		err := logFile.Sync()
		if err != nil {
			chk.Panic("cannot flush log file:\n%v", err)
		}
		err = logFile.Close()
		if err != nil {
			chk.Panic("cannot close log file:\n%v", err)
		}
		logFile = nil
	}
}
