package client

import "errors"

var ErrNilServices = errors.New("client services are not initialized")
