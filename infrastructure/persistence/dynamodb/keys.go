package dynamodb

import (
	"fmt"

	"synapse-backend/domain"
)

// Single-table layout. Graph records hang off the user partition; node and
// edge records hang off the user+graph partition, so every query and write
// is prefixed with the resolved scope.
//
//	graph: PK=USER#<uid>            SK=GRAPH#<gid>
//	node:  PK=USER#<uid>#GRAPH#<gid> SK=NODE#<nid>
//	edge:  PK=USER#<uid>#GRAPH#<gid> SK=EDGE#<eid>

func userPK(userID string) string {
	return fmt.Sprintf("USER#%s", userID)
}

func scopePK(scope domain.Scope) string {
	return fmt.Sprintf("USER#%s#GRAPH#%s", scope.UserID, scope.GraphID)
}

func graphSK(graphID string) string {
	return fmt.Sprintf("GRAPH#%s", graphID)
}

func nodeSK(nodeID string) string {
	return fmt.Sprintf("NODE#%s", nodeID)
}

func edgeSK(edgeID string) string {
	return fmt.Sprintf("EDGE#%s", edgeID)
}
