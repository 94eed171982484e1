// Package gen holds the generated protobuf and gRPC bindings for the
// audit.v1 API. The generated files are not committed; run
// `go generate ./gen` after editing proto/audit/v1/audit.proto.
package gen

//go:generate protoc --proto_path=../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative audit/v1/audit.proto
