//go:build gomock || generate

package ackhandler

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ackhandler -self_package github.com/sack-go/sack-go/internal/ackhandler -destination mock_connection_test.go github.com/sack-go/sack-go/internal/ackhandler Connection"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ackhandler -self_package github.com/sack-go/sack-go/internal/ackhandler -destination mock_rexmit_queue_test.go github.com/sack-go/sack-go/internal/ackhandler RexmitQueue"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ackhandler -self_package github.com/sack-go/sack-go/internal/ackhandler -destination mock_receive_queue_test.go github.com/sack-go/sack-go/internal/ackhandler ReceiveQueue"
