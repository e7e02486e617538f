// Package router compiles declarative routing targets into the
// ordered rule table the dispatcher walks on every log call.
//
// Compilation happens once at logger construction. Each target's level
// spec is resolved to an explicit core.LevelSet and an omitted format
// captures the instance default template at that moment. The table
// keeps configuration order; every rule whose set contains the call's
// level fires, so a level routed by three rules fans out three times.
package router
