// SPDX-License-Identifier: MIT

// Package stream serves surface synthesis over WebSocket.
//
// A client connects to /ws and sends JSON requests:
//
//	{"N":64,"rL":10,"h":1,"clx":2,"cly":0,"seed":7}
//
// Each request is answered with either
//
//	{"type":"surface","header":"rms:1:clx:2:cly:0:N:64:rL:10","N":64,"heights":[[...]],"stats":{...}}
//
// or {"type":"error","error":"..."}. The connection stays open until the
// client closes it. Requests on one connection are synthesized concurrently;
// writes to the connection are serialized.
package stream
