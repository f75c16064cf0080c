package utils

import (
	"log"
	"runtime"
	"time"

	"edushare/model"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// GetCPUUsage returns the current CPU usage as a percentage
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(time.Second, false)
	if err != nil {
		log.Printf("Error getting CPU usage: %v", err)
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}

// GetSystemStats collects a snapshot of host and process health
func GetSystemStats() model.SystemStats {
	stats := model.SystemStats{
		CPUUsagePercent: GetCPUUsage(),
		GoroutineCount:  runtime.NumGoroutine(),
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("Error getting memory usage: %v", err)
		return stats
	}
	stats.MemoryUsagePercent = vm.UsedPercent
	stats.MemoryUsedBytes = vm.Used
	return stats
}
