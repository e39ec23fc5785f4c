// cmd/opsctl/smoke.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
)

// runSmoke exercises the whole cycle lifecycle against a running server:
// create a client, start a cycle, schedule the shoot from its cycle task,
// walk the shoot through the production pipeline, and complete the
// check-in call.
func runSmoke(ctx context.Context, conn *grpc.ClientConn) {
	clientSvc := opsv1.NewClientServiceClient(conn)
	cycleSvc := opsv1.NewCycleServiceClient(conn)
	taskSvc := opsv1.NewTaskServiceClient(conn)
	shootSvc := opsv1.NewShootServiceClient(conn)
	dashboardSvc := opsv1.NewDashboardServiceClient(conn)

	fmt.Println("\n📝 Creating smoke test client")
	created, err := clientSvc.CreateClient(ctx, &opsv1.CreateClientRequest{
		Name: fmt.Sprintf("Smoke Test %d", time.Now().Unix()),
	})
	if err != nil {
		log.Fatalf("CreateClient failed: %v", err)
	}
	clientID := created.Client.Id
	fmt.Printf("   ✅ %s (%s)\n", created.Client.Name, clientID)

	month := time.Now().AddDate(0, 1, 0).Format("2006-01") + "-01"
	fmt.Printf("\n📅 Starting cycle for %s\n", month)
	started, err := cycleSvc.StartCycle(ctx, &opsv1.StartCycleRequest{
		ClientId: clientID,
		Month:    month,
	})
	if err != nil {
		log.Fatalf("StartCycle failed: %v", err)
	}
	fmt.Printf("   ✅ Cycle %s with %d tasks\n", started.Cycle.Id, started.TasksCreated)

	tasks, err := taskSvc.ListTasks(ctx, &opsv1.ListTasksRequest{
		ParentType: opsv1.ParentType_PARENT_TYPE_CYCLE,
		ParentId:   started.Cycle.Id,
	})
	if err != nil {
		log.Fatalf("ListTasks failed: %v", err)
	}

	var scheduleTaskID, checkinTaskID string
	for _, task := range tasks.Tasks {
		fmt.Printf("   • [%s] %s\n", task.Status, task.Title)
		switch task.Title {
		case "Schedule Shoot":
			scheduleTaskID = task.Id
		case "Conduct Check-in Call":
			checkinTaskID = task.Id
		}
	}

	if scheduleTaskID != "" {
		fmt.Println("\n🎬 Scheduling the shoot from its cycle task")
		shootDate := time.Now().AddDate(0, 1, 7).Format("2006-01-02")
		scheduled, err := shootSvc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
			ClientId:    clientID,
			CycleId:     &started.Cycle.Id,
			ShootDate:   shootDate,
			Type:        opsv1.ShootType_SHOOT_TYPE_MONTHLY,
			CycleTaskId: &scheduleTaskID,
		})
		if err != nil {
			log.Fatalf("ScheduleShoot failed: %v", err)
		}
		fmt.Printf("   ✅ Shoot on %s with %d tasks\n", scheduled.Shoot.ShootDate, scheduled.TasksCreated)

		fmt.Println("\n🎞  Walking the production pipeline")
		for _, next := range []opsv1.ShootStatus{
			opsv1.ShootStatus_SHOOT_STATUS_SHOT,
			opsv1.ShootStatus_SHOOT_STATUS_EDITED,
			opsv1.ShootStatus_SHOOT_STATUS_DELIVERED,
		} {
			if _, err := shootSvc.UpdateShootStatus(ctx, &opsv1.UpdateShootStatusRequest{
				ShootId: scheduled.Shoot.Id,
				Status:  next,
			}); err != nil {
				log.Fatalf("UpdateShootStatus failed: %v", err)
			}
			fmt.Printf("   ✅ %s\n", next)
		}
	}

	if checkinTaskID != "" {
		fmt.Println("\n📞 Completing the check-in call")
		checkin, err := taskSvc.CompleteCheckin(ctx, &opsv1.CompleteCheckinRequest{
			TaskId:     checkinTaskID,
			Transcript: "Smoke test transcript.",
			Notes:      "Smoke test notes.",
		})
		if err != nil {
			log.Fatalf("CompleteCheckin failed: %v", err)
		}
		fmt.Printf("   ✅ Check-in done, %d context entries written\n", checkin.ContextEntriesCreated)
	}

	fmt.Println("\n📊 Dashboard")
	dashboard, err := dashboardSvc.GetDashboard(ctx, &opsv1.GetDashboardRequest{})
	if err != nil {
		log.Fatalf("GetDashboard failed: %v", err)
	}
	fmt.Printf("   Active clients: %d, open tasks: %d, overdue: %d\n",
		dashboard.ActiveClients, dashboard.OpenTasks, dashboard.OverdueTasks)

	fmt.Println("\n✅ Smoke flow complete")
}
