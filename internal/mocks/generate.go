package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Reader --dir ../domain/match --output domain/match --outpkg matchmock --filename reader_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Reader --dir ../domain/player --output domain/player --outpkg playermock --filename reader_mock.go
