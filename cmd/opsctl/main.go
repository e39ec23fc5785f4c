// cmd/opsctl/main.go
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "server address")
	email := flag.String("email", "admin@example.com", "login email")
	password := flag.String("password", "", "login password")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: opsctl [flags] <command>")
		fmt.Println("Commands:")
		fmt.Println("  import <file.csv>   bulk import clients from a CSV file")
		fmt.Println("  smoke               run the end-to-end smoke flow")
		os.Exit(1)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	teamClient := opsv1.NewTeamServiceClient(conn)
	loginResp, err := teamClient.Login(ctx, &opsv1.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	authCtx := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+loginResp.AccessToken)
	fmt.Printf("✅ Logged in as %s\n", loginResp.Profile.Email)

	switch flag.Arg(0) {
	case "import":
		if flag.NArg() < 2 {
			log.Fatal("import requires a CSV file path")
		}
		runImport(authCtx, conn, flag.Arg(1))
	case "smoke":
		runSmoke(authCtx, conn)
	default:
		log.Fatalf("Unknown command %q", flag.Arg(0))
	}
}

// runImport reads a CSV with a header row of
// name,status,contact_name,contact_email,contact_phone,notes and imports
// every row in one call.
func runImport(ctx context.Context, conn *grpc.ClientConn, path string) {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	if _, ok := col["name"]; !ok {
		log.Fatal("CSV must have a 'name' column")
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var rows []*opsv1.ClientImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read CSV row: %v", err)
		}
		rows = append(rows, &opsv1.ClientImportRow{
			Name:         field(record, "name"),
			Status:       field(record, "status"),
			ContactName:  field(record, "contact_name"),
			ContactEmail: field(record, "contact_email"),
			ContactPhone: field(record, "contact_phone"),
			Notes:        field(record, "notes"),
		})
	}

	if len(rows) == 0 {
		log.Fatal("CSV has no data rows")
	}

	clientSvc := opsv1.NewClientServiceClient(conn)
	resp, err := clientSvc.BulkImportClients(ctx, &opsv1.BulkImportClientsRequest{Rows: rows})
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("✅ Imported %d clients\n", resp.Imported)
	for _, client := range resp.Clients {
		fmt.Printf("   • %s (%s)\n", client.Name, client.Id)
	}
}
