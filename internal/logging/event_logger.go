// Copyright 2026 Dimitrij Drus <dadrus@gmx.de>
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
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

// EventLogger forwards the lifecycle events of an fx application to
// zerolog. Successful steps are logged on trace level only.
type EventLogger struct {
	l zerolog.Logger
}

func NewEventLogger(logger zerolog.Logger) fxevent.Logger {
	return &EventLogger{l: logger}
}

func (l *EventLogger) LogEvent(event fxevent.Event) { // nolint: cyclop
	switch evt := event.(type) {
	case *fxevent.OnStartExecuted:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Msg("OnStart hook failed")
		} else {
			l.l.Trace().
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Str("_runtime", evt.Runtime.String()).
				Msg("OnStart hook executed")
		}
	case *fxevent.OnStopExecuted:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Msg("OnStop hook failed")
		} else {
			l.l.Trace().
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Str("_runtime", evt.Runtime.String()).
				Msg("OnStop hook executed")
		}
	case *fxevent.Provided:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).
				Str("_module", evt.ModuleName).
				Msg("Error encountered while providing module")
		} else {
			for _, typ := range evt.OutputTypeNames {
				l.l.Trace().
					Str("_constructor", evt.ConstructorName).
					Str("_type", typ).
					Msg("Module provided")
			}
		}
	case *fxevent.Invoked:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).
				Str("_function", evt.FunctionName).
				Msg("Invoke failed")
		}
	case *fxevent.Started:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).Msg("Start failed")
		} else {
			l.l.Trace().Msg("Started")
		}
	case *fxevent.Stopped:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).Msg("Stop failed")
		} else {
			l.l.Trace().Msg("Stopped")
		}
	}
}
